package pipelinehandler

import (
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	applicationstatus "hr-pipeline-backend/lib/pipeline/application-status"
	applicationstore "hr-pipeline-backend/lib/pipeline/application-store"
	assessmentwindow "hr-pipeline-backend/lib/pipeline/assessment-window"
	"hr-pipeline-backend/lib/pipeline/countdown"
	jobstore "hr-pipeline-backend/lib/pipeline/job-store"
	rounddetail "hr-pipeline-backend/lib/pipeline/round-detail"
	roundresolver "hr-pipeline-backend/lib/pipeline/round-resolver"
	roundstatus "hr-pipeline-backend/lib/pipeline/round-status"
	initchecker "hr-pipeline-backend/lib/utils/init-checker"
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrApplicationNotFound = errors.New("отклик не найден")
	ErrJobNotFound         = errors.New("вакансия не найдена")
)

type Provider interface {
	GetPipeline(applicationID string) (view pipelineapimodels.PipelineView, err error)
	GetRounds(applicationID string) (list []pipelineapimodels.RoundView, err error)
	GetBadge(applicationID string) (badge pipelineapimodels.BadgeView, err error)
	List(filter pipelineapimodels.ApplicationFilter) (list []pipelineapimodels.ApplicationListItem, err error)
	GetAssessmentWindow(jobID string) (view pipelineapimodels.AssessmentWindowView, err error)
	NewCountdown(jobID string, onTick func(countdown.Tick), onComplete func(countdown.Tick)) (*countdown.Scheduler, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"config", config.Conf,
	)
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		loc:              config.Conf.Location(),
		tickInterval:     config.Conf.TickInterval(),
		now:              time.Now,
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	jobStore         jobstore.Provider
	loc              *time.Location
	tickInterval     time.Duration
	now              func() time.Time
}

func (i impl) getLogger(applicationID, jobID string) *log.Entry {
	logger := log.WithField("section", "pipeline")
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	if jobID != "" {
		logger = logger.WithField("job_id", jobID)
	}
	return logger
}

func (i impl) GetPipeline(applicationID string) (view pipelineapimodels.PipelineView, err error) {
	app, job, err := i.load(applicationID)
	if err != nil {
		return pipelineapimodels.PipelineView{}, err
	}
	rounds := roundresolver.Resolve(job, app)
	view = pipelineapimodels.PipelineView{
		ApplicationID:   app.ID,
		JobID:           app.JobID,
		JobTitle:        job.Title,
		Badge:           pipelineapimodels.BadgeConvert(applicationstatus.Badge(app)),
		PipelineDefined: !roundresolver.IsPlaceholder(rounds),
		EmployerRemarks: app.EmployerRemarks,
		Rounds:          i.roundViews(rounds, job, app),
	}
	return view, nil
}

func (i impl) GetRounds(applicationID string) (list []pipelineapimodels.RoundView, err error) {
	app, job, err := i.load(applicationID)
	if err != nil {
		return nil, err
	}
	return i.roundViews(roundresolver.Resolve(job, app), job, app), nil
}

func (i impl) GetBadge(applicationID string) (badge pipelineapimodels.BadgeView, err error) {
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return pipelineapimodels.BadgeView{}, errors.Wrap(err, "ошибка получения отклика")
	}
	if app == nil {
		return pipelineapimodels.BadgeView{}, ErrApplicationNotFound
	}
	return pipelineapimodels.BadgeConvert(applicationstatus.Badge(*app)), nil
}

func (i impl) List(filter pipelineapimodels.ApplicationFilter) (list []pipelineapimodels.ApplicationListItem, err error) {
	apps, err := i.applicationStore.List(filter.ToDB())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	jobIDs := []string{}
	for _, app := range apps {
		jobIDs = append(jobIDs, app.JobID)
	}
	jobs, err := i.jobStore.GetByIDs(jobIDs)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	list = make([]pipelineapimodels.ApplicationListItem, 0, len(apps))
	for _, app := range apps {
		job := jobs[app.JobID]
		item := pipelineapimodels.ApplicationListItem{
			ID:          app.ID,
			CandidateID: app.CandidateID,
			JobID:       app.JobID,
			JobTitle:    job.Title,
			Status:      app.Status,
			Badge:       pipelineapimodels.BadgeConvert(applicationstatus.Badge(app)),
		}
		if filter.WithRounds {
			item.Rounds = i.roundViews(roundresolver.Resolve(job, app), job, app)
		}
		list = append(list, item)
	}
	return list, nil
}

func (i impl) GetAssessmentWindow(jobID string) (view pipelineapimodels.AssessmentWindowView, err error) {
	job, err := i.getJob(jobID)
	if err != nil {
		return pipelineapimodels.AssessmentWindowView{}, err
	}
	return i.windowView(job, i.now()), nil
}

// NewCountdown создает отсчет для окна оценки вакансии. Запуск и отмена на стороне вызывающего
func (i impl) NewCountdown(jobID string, onTick func(countdown.Tick), onComplete func(countdown.Tick)) (*countdown.Scheduler, error) {
	job, err := i.getJob(jobID)
	if err != nil {
		return nil, err
	}
	window := assessmentwindow.Calculate(assessmentwindow.InputFromJob(job), i.now(), i.loc)
	return countdown.New(window, onTick, onComplete,
		countdown.WithInterval(i.tickInterval),
		countdown.WithClock(i.now),
		countdown.WithLogger(i.getLogger("", jobID)),
	), nil
}

func (i impl) load(applicationID string) (dbmodels.Application, dbmodels.JobPosting, error) {
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return dbmodels.Application{}, dbmodels.JobPosting{}, errors.Wrap(err, "ошибка получения отклика")
	}
	if app == nil {
		return dbmodels.Application{}, dbmodels.JobPosting{}, ErrApplicationNotFound
	}
	job, err := i.jobStore.GetByID(app.JobID)
	if err != nil {
		return dbmodels.Application{}, dbmodels.JobPosting{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil {
		// этапы строятся только по данным отклика
		i.getLogger(applicationID, app.JobID).Warn("вакансия отклика не найдена")
		return *app, dbmodels.JobPosting{}, nil
	}
	return *app, *job, nil
}

func (i impl) getJob(jobID string) (dbmodels.JobPosting, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return dbmodels.JobPosting{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil {
		return dbmodels.JobPosting{}, ErrJobNotFound
	}
	return *job, nil
}

func (i impl) roundViews(rounds []models.Round, job dbmodels.JobPosting, app dbmodels.Application) []pipelineapimodels.RoundView {
	now := i.now()
	result := make([]pipelineapimodels.RoundView, 0, len(rounds))
	for _, round := range rounds {
		view := pipelineapimodels.RoundView{
			Key:       round.UniqueKey,
			Name:      round.DisplayName,
			RoundType: round.RoundType,
			Order:     round.SourceOrder,
			Source:    round.Source,
			Status:    pipelineapimodels.StatusConvert(roundstatus.Classify(round, app)),
		}
		detail, found := rounddetail.Merge(round, job, app)
		if found {
			view.HasDetail = true
			view.Detail = pipelineapimodels.DetailConvert(detail)
			view.DateRange = rounddetail.FormatDateRange(detail, i.loc)
		}
		if round.IsAssessment() {
			window := i.windowView(job, now)
			view.AssessmentWindow = &window
		}
		result = append(result, view)
	}
	return result
}

func (i impl) windowView(job dbmodels.JobPosting, now time.Time) pipelineapimodels.AssessmentWindowView {
	window := assessmentwindow.Calculate(assessmentwindow.InputFromJob(job), now, i.loc)
	view := pipelineapimodels.AssessmentWindowConvert(window)
	phase, target := countdown.PhaseOf(window, now)
	view.Phase = phase
	if target != nil {
		remaining := target.Sub(now)
		view.RemainingSec = int64(remaining / time.Second)
		view.Countdown = countdown.FormatDuration(remaining)
	}
	return view
}
