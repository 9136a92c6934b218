package pattern

// Name identifies a catalog entry.
type Name string

const (
	DigitPresent   Name = "digit_present"
	UpperPresent   Name = "upper_present"
	LowerPresent   Name = "lower_present"
	LetterPresent  Name = "letter_present"
	SpecialPresent Name = "special_present"
	Pincode        Name = "pincode"
	Alphanumeric   Name = "alphanumeric"
	Numeric        Name = "numeric"
	Alpha          Name = "alpha"
	Decimal        Name = "decimal"
	MACAddress     Name = "mac_address"
	Hexadecimal    Name = "hexadecimal"
	MD5            Name = "md5"
	IPAddress      Name = "ip_address"
	Email          Name = "email"
	Phone          Name = "phone"
)

// Definition is the uncompiled form of a catalog entry.
type Definition struct {
	Name        Name
	Expr        string
	Description string
}

// Email local-part characters: letters, digits, underscore and !#$%&'*+-/=?^`{|}~.
// Dots are allowed only between two local-part characters.
const (
	emailLocalChar  = "[!#$%&'*+\\-/=?^_`{|}~\\w]"
	emailLocalInner = "[!#$%&'*+\\-/=?^_`{|}~\\w.]"
)

var builtin = []Definition{
	{Name: DigitPresent, Expr: `[0-9]`, Description: "at least one digit"},
	{Name: UpperPresent, Expr: `[A-Z]`, Description: "at least one uppercase letter"},
	{Name: LowerPresent, Expr: `[a-z]`, Description: "at least one lowercase letter"},
	{Name: LetterPresent, Expr: `[a-zA-Z]`, Description: "at least one letter"},
	// \s is spelled out: RE2's \s has no vertical tab.
	{Name: SpecialPresent, Expr: `[^a-zA-Z0-9 \t\n\x0B\f\r]`, Description: "at least one special character"},
	{Name: Pincode, Expr: `^[0-9]{6}$`, Description: "six digit pincode"},
	{Name: Alphanumeric, Expr: `^[a-zA-Z0-9_]+$`, Description: "letters, digits and underscore"},
	{Name: Numeric, Expr: `^[0-9]+`, Description: "digits"},
	{Name: Alpha, Expr: `[a-zA-Z]+`, Description: "letters"},
	{Name: Decimal, Expr: `^[0-9]*\.?[0-9]*$`, Description: "decimal number"},
	{Name: MACAddress, Expr: `^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`, Description: "MAC address"},
	{Name: Hexadecimal, Expr: `[0-9A-Fa-f]+`, Description: "hexadecimal digits"},
	{Name: MD5, Expr: `[a-fA-F0-9]{32}`, Description: "MD5 hash"},
	// IPv6 without compression, or anything IPv4 shaped; octets are not range checked.
	{Name: IPAddress, Expr: `([0-9A-Fa-f]{1,4}:){7}[0-9A-Fa-f]{1,4}|(\d{1,3}\.){3}\d{1,3}`, Description: "IP address"},
	{
		Name: Email,
		Expr: "^(((" + emailLocalChar + ")|(" + emailLocalChar + emailLocalInner + "*" + emailLocalChar + "))" +
			`[@]\w+([-.]\w+)*\.\w+([-.]\w+)*)$`,
		Description: "email address",
	},
	{Name: Phone, Expr: `^[2-9]\d{2}-\d{3}-\d{4}$`, Description: "US phone number NNN-NNN-NNNN"},
}

// Definitions returns a copy of the built-in catalog table.
func Definitions() []Definition {
	out := make([]Definition, len(builtin))
	copy(out, builtin)
	return out
}
