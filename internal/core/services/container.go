package services

import (
	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/platform/config"
)

// NewServiceContainer wires every service facade against the given
// repositories and transaction manager.
func NewServiceContainer(cfg *config.Config, repos portsrepo.Repositories, txm portsrepo.TxManager) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:    NewAuthService(cfg, repos, txm),
		User:    NewUserService(repos, txm),
		Contact: NewContactService(repos, txm),
		Group:   NewGroupService(repos, txm),
	}
}
