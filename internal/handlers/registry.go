package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	HomeHandler    *HomeHandler
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	AdminHandler   *AdminHandler
}
