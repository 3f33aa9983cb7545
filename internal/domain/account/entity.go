package account

import "time"

// Kind discriminates the three account variants sharing one id key space.
type Kind string

const (
	KindSenior     Kind = "senior"
	KindCompany    Kind = "company"
	KindGovernment Kind = "government"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSenior, KindCompany, KindGovernment:
		return true
	}
	return false
}

// Registerable reports whether accounts of this kind may be created through
// the public registration path. Government accounts exist only as seed data.
func (k Kind) Registerable() bool {
	return k == KindSenior || k == KindCompany
}

type Account struct {
	ID             string
	CredentialHash string
	Kind           Kind
	Name           string
	Phone          string
	CreatedAt      time.Time
}

// SeniorProfile holds the extended demographic and work-preference fields of
// a senior account. String fields are empty when unset; BirthDate is nil when
// unset.
type SeniorProfile struct {
	AccountID            string
	BirthDate            *time.Time
	Gender               string
	Address              string
	RestrictedActivities string
	EmploymentType       string
	Location             string
	WorkDays             string
	WorkHours            string
	WorkPeriod           string
}

type Company struct {
	AccountID      string
	BusinessNumber string
	Address        string
}

type Government struct {
	AccountID  string
	Department string
	Tel        string
	Email      string
}
