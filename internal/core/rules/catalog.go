package rules

// Names of the built-in rules.
const (
	NameRequired       = "required"
	NameEmail          = "email"
	NamePhoneNumber    = "phoneNumber"
	NameZipCode        = "zipCode"
	NameName           = "name"
	NamePasswordLength = "passwordLength"
)

const (
	emailPattern = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`
	phonePattern = `^[0-9]{10}$`
	zipPattern   = `^[0-9]{5}(-[0-9]{4})?$`

	minNameLength     = 3
	minPasswordLength = 8
)

// Catalog is the fixed set of built-in rules.
type Catalog struct {
	Required       Rule
	Email          Rule
	PhoneNumber    Rule
	ZipCode        Rule
	Name           Rule
	PasswordLength Rule
}

// NewCatalog builds the built-in rules. It panics if a built-in pattern is
// malformed, which can only happen through a programming error.
func NewCatalog() Catalog {
	return Catalog{
		Required:       NotEmpty("This field is required"),
		Email:          MustPattern("Invalid email address", emailPattern),
		PhoneNumber:    MustPattern("Invalid phone number", phonePattern),
		ZipCode:        MustPattern("Invalid zip code", zipPattern),
		Name:           MinLength("Name must be at least 3 characters long", minNameLength),
		PasswordLength: MinLength("Password must be at least 8 characters long", minPasswordLength),
	}
}

// entries returns the catalog keyed by rule name.
func (c Catalog) entries() map[string]Rule {
	return map[string]Rule{
		NameRequired:       c.Required,
		NameEmail:          c.Email,
		NamePhoneNumber:    c.PhoneNumber,
		NameZipCode:        c.ZipCode,
		NameName:           c.Name,
		NamePasswordLength: c.PasswordLength,
	}
}
