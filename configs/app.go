package configs

type App struct {
	Environment  string   `env:"ENVIRONMENT,notEmpty"`
	AdminUserIDs []string `env:"ADMIN_USER_IDS" envSeparator:","`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}

func (c App) IsAdmin(userID string) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
