package domain

type Dashboard struct {
	TotalUsers    int64
	TotalBets     int64
	ActiveBets    int64
	TotalVolume   float64
	TokensMinted  float64
	PendingPayout float64
}

type Mint struct {
	Address string
	Amount  float64
}

type Transfer struct {
	To     string
	Amount float64
}

type Registration struct {
	Username string
	Email    string
	Password string
}

type LoginCredentials struct {
	Email    string
	Password string
}
