package api

import (
	"Nokoroa/internal/api/config"
	"Nokoroa/internal/api/middleware"
	"Nokoroa/internal/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Cfg.Server.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Trace-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/signup", group.UserHandler.Signup)

			optGroup := userGroup.Group("")
			optGroup.Use(middleware.AuthOptionalMiddleware())
			{
				optGroup.GET("/:id", group.UserHandler.GetUserById)
			}

			loggedGroup := userGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.GET("/profile", group.UserHandler.GetProfile)
				loggedGroup.PUT("/profile", group.UserHandler.UpdateProfile)
				loggedGroup.PUT("/change-password", group.UserHandler.ChangePassword)
				loggedGroup.POST("/upload-avatar", group.UserHandler.UploadAvatar)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			optGroup := postGroup.Group("")
			optGroup.Use(middleware.AuthOptionalMiddleware())
			{
				optGroup.GET("", group.PostHandler.ListPosts)
				optGroup.GET("/search", group.PostHandler.SearchPosts)
				optGroup.GET("/search-by-location", group.PostHandler.SearchPostsByLocation)
				optGroup.GET("/tags", group.PostHandler.GetTagStats)
				optGroup.GET("/locations", group.PostHandler.GetLocations)
				optGroup.GET("/:id", group.PostHandler.GetPost)
			}

			loggedGroup := postGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("", group.PostHandler.CreatePost)
				loggedGroup.PUT("/:id", group.PostHandler.UpdatePost)
				loggedGroup.DELETE("/:id", group.PostHandler.DeletePost)
				loggedGroup.POST("/upload-image", group.PostHandler.UploadImage)
			}
		}

		favoriteGroup := apiGroup.Group("/favorites")
		{
			favoriteGroup.GET("/stats/:postId", group.FavoriteHandler.GetFavoriteStats)

			loggedGroup := favoriteGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.GET("", group.FavoriteHandler.GetUserFavorites)
				loggedGroup.POST("/:postId", group.FavoriteHandler.AddFavorite)
				loggedGroup.DELETE("/:postId", group.FavoriteHandler.RemoveFavorite)
				loggedGroup.GET("/check/:postId", group.FavoriteHandler.CheckFavoriteStatus)
			}
		}

		followGroup := apiGroup.Group("/follows")
		{
			optGroup := followGroup.Group("")
			optGroup.Use(middleware.AuthOptionalMiddleware())
			{
				optGroup.GET("/followers/:userId", group.FollowHandler.GetFollowers)
				optGroup.GET("/following/:userId", group.FollowHandler.GetFollowing)
				optGroup.GET("/followers/:userId/count", group.FollowHandler.GetFollowerCount)
				optGroup.GET("/following/:userId/count", group.FollowHandler.GetFollowingCount)
			}

			loggedGroup := followGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/:userId", group.FollowHandler.Follow)
				loggedGroup.DELETE("/:userId", group.FollowHandler.Unfollow)
				loggedGroup.GET("/check/:userId", group.FollowHandler.CheckFollowStatus)
			}
		}
	}

	return r
}
