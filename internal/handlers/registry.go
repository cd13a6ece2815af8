package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	JobPostingHandler   *JobPostingHandler
	OrganizationHandler *OrganizationHandler
	FieldOptionsHandler *FieldOptionsHandler
}
