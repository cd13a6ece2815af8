package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	JobService          JobService
	ActivationService   ActivationService
	OrganizationService OrganizationService
	NotificationService NotificationService
	GroupService        GroupService
}
