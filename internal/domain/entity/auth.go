package entity

// AuthSession is what the auth collaborator hands back after a sign-in.
type AuthSession struct {
	UID          string `json:"uid"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
