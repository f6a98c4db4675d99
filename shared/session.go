package shared

// AuthSession is the contract against the enclosing user-management layer.
// Authentication itself (JWT, 2FA, ...) happens outside this core.
type AuthSession interface {
	GetUserID() string
}

type userSession struct {
	userID string
}

func (s userSession) GetUserID() string {
	return s.userID
}

func NewUserSession(userID string) AuthSession {
	return userSession{userID: userID}
}
