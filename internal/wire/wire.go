package wire

import (
	"Nokoroa/internal/api"
	"Nokoroa/internal/api/config"
	"Nokoroa/internal/api/handler"
	"Nokoroa/internal/job"
	"Nokoroa/internal/pkg/cron"
	"Nokoroa/internal/repository"
	"Nokoroa/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	bookmarkRepo := repository.NewBookmarkRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)

	userService := service.NewUserService(userRepo, postRepo, userFollowRepo)
	postService := service.NewPostService(postRepo, tagRepo, locationRepo, bookmarkRepo)
	favoriteService := service.NewFavoriteService(bookmarkRepo, postRepo)
	followService := service.NewFollowService(userFollowRepo, userRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(userService),
		UserHandler:     handler.NewUserHandler(userService),
		PostHandler:     handler.NewPostHandler(postService),
		FavoriteHandler: handler.NewFavoriteHandler(favoriteService),
		FollowHandler:   handler.NewFollowHandler(followService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewTagStatsJob(postService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
