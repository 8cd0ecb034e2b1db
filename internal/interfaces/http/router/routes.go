package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, handlers Handlers, generateLimit gin.HandlerFunc) {
	// 帖子生成
	if h := handlers.Post; h != nil {
		posts := v1.Group("/posts")
		{
			posts.POST("/generate", generateLimit, h.GeneratePost)
		}
	}

	// 工作区：对话、资料、选项、草稿
	if h := handlers.Workspace; h != nil {
		workspaces := v1.Group("/workspaces")
		{
			workspaces.DELETE("/:wid", h.Reset)
			workspaces.GET("/:wid/:key", h.GetEntry)
			workspaces.PUT("/:wid/:key", h.PutEntry)
			workspaces.DELETE("/:wid/:key", h.DeleteEntry)
		}
	}
}
