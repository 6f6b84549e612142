package model

// Account statuses reported by the remote API. A banned or deactivated
// account destroys the local session on sight.
const (
	UserActive      = "ACTIVE"
	UserBanned      = "BANNED"
	UserDeactivated = "DEACTIVATED"
)

type User struct {
	ID        string `json:"id" bson:"id"`
	FirstName string `json:"firstName" bson:"first_name"`
	LastName  string `json:"lastName" bson:"last_name"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phoneNumber" bson:"phone"`
	Avatar    string `json:"profileImage,omitempty" bson:"avatar,omitempty"`
	Status    string `json:"status" bson:"status"`
}

func (u *User) Blocked() bool {
	return u.Status == UserBanned || u.Status == UserDeactivated
}

// TokenPair is the access/refresh pair issued by the remote API on login
// and rotation.
type TokenPair struct {
	AccessToken  string `json:"accessToken" bson:"access_token"`
	RefreshToken string `json:"refreshToken" bson:"refresh_token"`
}

type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty" validate:"omitempty,min=2,max=50"`
	LastName  string `json:"lastName,omitempty" validate:"omitempty,min=2,max=50"`
	Phone     string `json:"phoneNumber,omitempty" validate:"omitempty,e164"`
	Avatar    string `json:"profileImage,omitempty" validate:"omitempty,url"`
}
