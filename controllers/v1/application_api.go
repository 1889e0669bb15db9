package apiv1

import (
	"bytes"
	"fmt"
	"hr-pipeline-backend/controllers"
	pdfexport "hr-pipeline-backend/lib/export/pdf"
	xlsexport "hr-pipeline-backend/lib/export/xls"
	pipelinehandler "hr-pipeline-backend/lib/pipeline"
	apimodels "hr-pipeline-backend/models/api"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
	"time"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export/xls", controller.exportXls)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("pipeline", controller.pipeline)
			idRoute.Get("rounds", controller.rounds)
			idRoute.Get("badge", controller.badge)
			idRoute.Get("export/pdf", controller.exportPdf)
		})
	})
}

// @Summary Воронка этапов отклика
// @Tags Отклик
// @Description Этапы отбора со статусами, деталями и окном оценки
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.PipelineView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/pipeline [get]
func (c *applicationApiController) pipeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipelinehandler.Instance.GetPipeline(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения этапов отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Этапы отклика
// @Tags Отклик
// @Description Список этапов отбора со статусами
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.RoundView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/rounds [get]
func (c *applicationApiController) rounds(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipelinehandler.Instance.GetRounds(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения этапов отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Итоговый статус отклика
// @Tags Отклик
// @Description Итоговый статус отклика
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BadgeView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/badge [get]
func (c *applicationApiController) badge(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipelinehandler.Instance.GetBadge(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список откликов
// @Tags Отклик
// @Description Список откликов кандидата или вакансии с итоговым статусом
// @Param	body body	 pipelineapimodels.ApplicationFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]pipelineapimodels.ApplicationListItem}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := pipelinehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Выгрузка списка откликов в Excel
// @Tags Отклик
// @Description Выгрузка списка откликов с этапами в Excel
// @Param	body body	 pipelineapimodels.ApplicationFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/export/xls [post]
func (c *applicationApiController) exportXls(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	payload.WithRounds = true
	list, err := pipelinehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	data, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки списка откликов в Excel")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Выгрузка этапов отклика в PDF
// @Tags Отклик
// @Description Все этапы отклика с деталями одним документом
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/export/pdf [get]
func (c *applicationApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := pipelinehandler.Instance.GetPipeline(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения этапов отклика")
	}
	data, err := pdfexport.GeneratePipelineReport(view)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования PDF")
	}
	fileName := fmt.Sprintf("application-%v.pdf", id)
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(data))
}
