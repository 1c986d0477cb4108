package model

// Credentials is the identity pair issued by the bridge on registration.
type Credentials struct {
	Username  string `json:"username"`
	ClientKey string `json:"clientKey"`
}

func (c *Credentials) IsZero() bool {
	return c == nil || c.Username == ""
}

// Connection is everything needed to talk to one bridge for the lifetime of the process.
type Connection struct {
	Address     string
	Credentials Credentials
}
