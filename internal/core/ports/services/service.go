package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Auth    AuthSvcFacade
	User    UserSvcFacade
	Contact ContactSvcFacade
	Group   GroupSvcFacade
}
