package routers

import (
	"github.com/nimbusdrive/nimbus/middleware"
	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/hashid"
	"github.com/nimbusdrive/nimbus/routers/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitRouter builds the gin engine with all API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()

	initCORS(r)
	r.Use(middleware.Session(conf.SystemConfig.SessionSecret))

	v3 := r.Group("/api/v3")
	{
		site := v3.Group("site")
		{
			site.GET("ping", controllers.Ping)
		}

		user := v3.Group("user")
		{
			user.POST("", controllers.UserRegister)
			user.POST("session", controllers.UserLogin)
		}

		auth := v3.Group("")
		auth.Use(middleware.CurrentUser(), middleware.AuthRequired())
		{
			me := auth.Group("user")
			{
				me.GET("me", controllers.UserMe)
				me.DELETE("session", controllers.UserLogout)
			}

			folders := auth.Group("folders")
			{
				folders.POST("", controllers.CreateDirectory)
				folders.GET("", controllers.ListFolders)
				folders.GET("starred", controllers.ListStarredFolders)
				folders.GET("trash", controllers.ListTrashedFolders)

				folder := folders.Group(":id", middleware.HashID(hashid.FolderID))
				{
					folder.GET("", controllers.ListDirectory)
					folder.GET("breadcrumb", controllers.FolderBreadcrumb)
					folder.PUT("rename", controllers.RenameFolder)
					folder.PUT("move", controllers.MoveFolder)
					folder.PUT("star", controllers.StarFolder)
					folder.PUT("restore", controllers.RestoreFolder)
					folder.POST("copy", controllers.CopyFolder)
					folder.DELETE("", controllers.DeleteFolder)
					folder.DELETE("permanent", controllers.PurgeFolder)
				}
			}

			files := auth.Group("files")
			{
				files.POST("upload", controllers.FileUpload)
				files.GET("", controllers.ListFiles)
				files.GET("starred", controllers.ListStarredFiles)
				files.GET("trash", controllers.ListTrashedFiles)

				file := files.Group(":id", middleware.HashID(hashid.FileID))
				{
					file.GET("download", controllers.FileDownload)
					file.PUT("rename", controllers.RenameFile)
					file.PUT("move", controllers.MoveFile)
					file.PUT("star", controllers.StarFile)
					file.PUT("restore", controllers.RestoreFile)
					file.POST("copy", controllers.CopyFile)
					file.DELETE("", controllers.DeleteFile)
					file.DELETE("permanent", controllers.PurgeFile)
				}
			}
		}
	}

	return r
}

// initCORS attaches the CORS middleware when origins are configured.
func initCORS(router *gin.Engine) {
	if conf.CORSConfig.AllowOrigins[0] != "UNSET" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     conf.CORSConfig.AllowOrigins,
			AllowMethods:     conf.CORSConfig.AllowMethods,
			AllowHeaders:     conf.CORSConfig.AllowHeaders,
			AllowCredentials: conf.CORSConfig.AllowCredentials,
			ExposeHeaders:    conf.CORSConfig.ExposeHeaders,
		}))
	}
}
