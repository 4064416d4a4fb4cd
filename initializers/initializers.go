package initializers

import (
	"context"
	"work-tools-backend/config"
	"work-tools-backend/fiberlog"
	xlsexport "work-tools-backend/lib/export/xls"
	filestorage "work-tools-backend/lib/file-storage"
	pushhandler "work-tools-backend/lib/space/push/handler"
	workitemhandler "work-tools-backend/lib/workitem"
	workstathandler "work-tools-backend/lib/workstat"
	connectionhub "work-tools-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	pushhandler.NewHandler()
	xlsexport.NewHandler()
	workitemhandler.NewHandler()
	workstathandler.NewHandler()
}
