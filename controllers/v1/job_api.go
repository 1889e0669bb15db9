package apiv1

import (
	"hr-pipeline-backend/controllers"
	pipelinehandler "hr-pipeline-backend/lib/pipeline"
	apimodels "hr-pipeline-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("assessment_window", controller.assessmentWindow)
		})
	})
}

// @Summary Окно оценки вакансии
// @Tags Вакансия
// @Description Границы окна оценки и оставшееся время на текущий момент
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.AssessmentWindowView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id}/assessment_window [get]
func (c *jobApiController) assessmentWindow(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipelinehandler.Instance.GetAssessmentWindow(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения окна оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
