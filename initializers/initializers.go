package initializers

import (
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/fiberlog"
	xlsexport "hr-pipeline-backend/lib/export/xls"
	pipelinehandler "hr-pipeline-backend/lib/pipeline"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	pipelinehandler.NewHandler()
	xlsexport.NewHandler()
}
