package environment

import "strings"

// Environment names the deployment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps an APP_ENV value to an Environment. Short aliases ("dev",
// "stage", "prod") are accepted; anything unknown is Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsStaging reports whether e is Staging.
func (e Environment) IsStaging() bool {
	return e == Staging
}
