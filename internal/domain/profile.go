package domain

type Profile struct {
	ID              string
	Username        string
	Email           string
	Role            Role
	LichessUsername string
}
