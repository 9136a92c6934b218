package card

// Issuer is the card network derived from the issuer prefix.
type Issuer string

const (
	Visa          Issuer = "Visa"
	Mastercard    Issuer = "Mastercard"
	ChinaUnionPay Issuer = "China Union Pay"
	Maestro       Issuer = "Maestro"
	Unknown       Issuer = "Unknown"
)

func (i Issuer) String() string {
	return string(i)
}

// issuerRange is an inclusive range of six digit prefixes.
type issuerRange struct {
	start  int
	end    int
	issuer Issuer
}

// Order matters: China Union Pay sits inside the second Maestro range and
// must be checked first.
var issuerRanges = []issuerRange{
	{start: 400001, end: 499998, issuer: Visa},
	{start: 222101, end: 272098, issuer: Mastercard},
	{start: 510001, end: 559998, issuer: Mastercard},
	{start: 620001, end: 629998, issuer: ChinaUnionPay},
	{start: 500001, end: 509998, issuer: Maestro},
	{start: 560001, end: 699998, issuer: Maestro},
}

func issuerFor(prefix int) Issuer {
	for _, r := range issuerRanges {
		if prefix >= r.start && prefix <= r.end {
			return r.issuer
		}
	}
	return Unknown
}

// IssuerOf classifies number by its six digit prefix. Numbers shorter than
// six characters, with a non-digit prefix or with a leading zero are Unknown.
func IssuerOf(number string) Issuer {
	prefix, ok := issuerPrefix(number)
	if !ok {
		return Unknown
	}
	return issuerFor(prefix)
}

// issuerPrefix parses the first PrefixLength characters. It reports false
// when the string is too short, the prefix is not all digits, or the prefix
// starts with zero.
func issuerPrefix(number string) (int, bool) {
	if len(number) < PrefixLength {
		return 0, false
	}
	if number[0] == '0' {
		return 0, false
	}

	prefix := 0
	for i := 0; i < PrefixLength; i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		prefix = prefix*10 + int(c-'0')
	}
	return prefix, true
}
