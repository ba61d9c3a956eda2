// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/scoutdesk/backoffice/audit"
	"github.com/scoutdesk/backoffice/dao"
	"github.com/scoutdesk/backoffice/util"
)

type Services struct {
	Attribute    IAttributeService
	UserType     IUserTypeService
	Profile      IProfileService
	Form         IFormService
	StaticData   IStaticDataService
	Job          IJobService
	Announcement IAnnouncementService
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	attributeDAO := dao.NewAttributeDAO(driver, auditService)
	userTypeDAO := dao.NewUserTypeDAO(driver, auditService)
	profileDAO := dao.NewProfileDAO(driver, auditService)
	jobDAO := dao.NewJobDAO(driver, auditService)
	announcementDAO := dao.NewAnnouncementDAO(driver, auditService)

	integrityGuard := NewIntegrityGuard(userTypeDAO, profileDAO)
	staticDataService := NewStaticDataService(cacheService)
	attributeService := NewAttributeService(attributeDAO, integrityGuard, validationUtil, cacheService, notificationSvc, eventBus)
	userTypeService := NewUserTypeService(userTypeDAO, attributeDAO, integrityGuard, validationUtil, cacheService, notificationSvc, eventBus)
	profileService := NewProfileService(profileDAO, userTypeService, attributeService, staticDataService, cacheService, notificationSvc, eventBus)
	formService := NewFormService(userTypeService, attributeService, staticDataService, profileService)

	services := &Services{
		Attribute:    attributeService,
		UserType:     userTypeService,
		Profile:      profileService,
		Form:         formService,
		StaticData:   staticDataService,
		Job:          NewJobService(jobDAO, profileDAO, validationUtil, eventBus),
		Announcement: NewAnnouncementService(announcementDAO, validationUtil, eventBus),
	}

	return services, nil
}
