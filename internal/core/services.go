package core

import "time"

type Services struct {
	Auth     *AuthService
	User     *UserService
	Customer *CustomerService
	Matter   *MatterService
	Stats    *StatsService
}

func NewServices(db DB, jwtSecret string, jwtExpiry time.Duration) *Services {
	return &Services{
		Auth:     NewAuthService(db, jwtSecret, jwtExpiry),
		User:     NewUserService(db),
		Customer: NewCustomerService(db),
		Matter:   NewMatterService(db),
		Stats:    NewStatsService(db),
	}
}
