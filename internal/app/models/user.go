package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	CompanyID string `bson:"companyId"`
	TimeModel `bson:",inline"`
}
