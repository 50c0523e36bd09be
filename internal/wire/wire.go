package wire

import (
	"Pulse/internal/api"
	"Pulse/internal/api/config"
	"Pulse/internal/api/handler"
	"Pulse/internal/job"
	"Pulse/internal/pkg/cron"
	"Pulse/internal/repository"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	SlackDB  *gorm.DB
	GithubDB *gorm.DB
	CronMgr  *cron.Manager
}

func BuildApplication(slackDB, githubDB *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(slackDB)
	messageRepo := repository.NewMessageRepo(slackDB)
	reactionRepo := repository.NewReactionRepo(slackDB)
	fileRepo := repository.NewFileRepo(slackDB)
	repoRepo := repository.NewRepoRepo(githubDB)
	commitRepo := repository.NewCommitRepo(githubDB)

	messageService := service.NewMessageService(messageRepo)
	countService := service.NewCountService(messageRepo, reactionRepo, fileRepo, userRepo)
	interactivityService := service.NewInteractivityService(messageRepo, reactionRepo, fileRepo, userRepo)
	weeklyService := service.NewWeeklyService(messageRepo, reactionRepo)
	triviaService := service.NewTriviaService(messageRepo, userRepo, cfg.Slack.TriviaKeywords)
	repositoryService := service.NewRepositoryService(repoRepo)
	commitService := service.NewCommitService(commitRepo)
	slackService := service.NewSlackService(&cfg.Slack)

	handlers := &api.HandlersGroup{
		MessageHandler:       handler.NewMessageHandler(messageService),
		CountHandler:         handler.NewCountHandler(countService),
		InteractivityHandler: handler.NewInteractivityHandler(interactivityService),
		WeeklyHandler:        handler.NewWeeklyHandler(weeklyService),
		TriviaHandler:        handler.NewTriviaHandler(triviaService),
		RepositoryHandler:    handler.NewRepositoryHandler(repositoryService),
		CommitHandler:        handler.NewCommitHandler(commitService),
		SlackHandler:         handler.NewSlackHandler(slackService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewTriviaWarmJob(triviaService))

	return &ApplicationContainer{
		Router:   router,
		SlackDB:  slackDB,
		GithubDB: githubDB,
		CronMgr:  cronMgr,
	}, nil
}
