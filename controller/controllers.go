// controller/controllers.go
package controller

import "github.com/scoutdesk/backoffice/service"

type Controllers struct {
	Attribute    *AttributeController
	UserType     *UserTypeController
	Profile      *ProfileController
	StaticData   *StaticDataController
	Job          *JobController
	Announcement *AnnouncementController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Attribute:    NewAttributeController(services.Attribute),
		UserType:     NewUserTypeController(services.UserType, services.Form),
		Profile:      NewProfileController(services.Profile),
		StaticData:   NewStaticDataController(services.StaticData),
		Job:          NewJobController(services.Job),
		Announcement: NewAnnouncementController(services.Announcement),
	}
}
