package ws

import (
	"context"
	pipelinehandler "hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/pipeline/countdown"
	wsclient "hr-pipeline-backend/lib/ws/client"
	wsmodels "hr-pipeline-backend/models/ws"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		return ctx.Next()
	})
	app.Get("/job/:id/countdown", websocket.New(countdownHandler))
}

// @Summary Обратный отсчет окна оценки
// @Tags Websocket Окно оценки
// @Description Ежесекундный отсчет до начала/окончания окна оценки вакансии
// @Param   id          	path    string  				    true         "job ID"
// @Success 200 {object} wsmodels.CountdownMessage
// @Failure 400
// @Failure 404
// @Failure 500
// @router /api/v1/ws/job/{id}/countdown [get]
func countdownHandler(c *websocket.Conn) {
	jobID := c.Params("id")
	client := wsclient.NewClient(jobID, c)
	if err := serveCountdown(context.Background(), jobID, client); err != nil {
		log.WithField("job_id", jobID).WithError(err).Warn("не удалось запустить отсчет")
		_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error()))
	}
}

type countdownClient interface {
	Send(msg interface{}) error
	Dispatch()
}

// serveCountdown отправляет отсчет клиенту, пока тот не закроет соединение.
// Возврат только после остановки отсчета: после него соединение возвращается в пул
func serveCountdown(ctx context.Context, jobID string, client countdownClient) error {
	logger := log.WithField("job_id", jobID)
	send := func(completed bool) func(tick countdown.Tick) {
		return func(tick countdown.Tick) {
			if err := client.Send(TickConvert(jobID, tick, completed)); err != nil {
				logger.WithError(err).Warn("ошибка отправки отсчета")
			}
		}
	}
	scheduler, err := pipelinehandler.Instance.NewCountdown(jobID, send(false), send(true))
	if err != nil {
		return err
	}
	defer func() {
		scheduler.Cancel()
		<-scheduler.Done()
	}()
	scheduler.Start(ctx)
	client.Dispatch()
	return nil
}

func TickConvert(jobID string, tick countdown.Tick, completed bool) wsmodels.CountdownMessage {
	return wsmodels.CountdownMessage{
		Time:         tick.At.Format(time.RFC3339),
		JobID:        jobID,
		Phase:        tick.Phase,
		RemainingSec: int64(tick.Remaining / time.Second),
		Text:         tick.Text,
		Completed:    completed,
	}
}
