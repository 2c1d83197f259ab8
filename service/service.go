package service

import (
	"cadastrobot/pkg/logger"
	"cadastrobot/storage"
)

type IServiceManager interface {
	Registration() RegistrationService
	Search() SearchService
}

type service struct {
	registrationService RegistrationService
	searchService       SearchService
}

func New(stg storage.IStorage, client ServerClient, log logger.ILogger) IServiceManager {
	return &service{
		registrationService: NewRegistrationService(stg, client, log),
		searchService:       NewSearchService(client, log),
	}
}

func (s *service) Registration() RegistrationService {
	return s.registrationService
}

func (s *service) Search() SearchService {
	return s.searchService
}
