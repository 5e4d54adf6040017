package service

import (
	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	LeaveService   ClientLeaveService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, appCfg config.ClientApp, log *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(localStore, serverAdapter, log)
	leaveSvc := NewClientLeaveService(sessionSvc, serverAdapter, appCfg.PageSize, log)

	return &ClientServices{
		SessionService: sessionSvc,
		LeaveService:   leaveSvc,
	}
}
