package router

import (
	authhandler "bookmarks_backend/internal/feature/auth/transport/handler"
	bookmarkhandler "bookmarks_backend/internal/feature/bookmark/transport/handler"
	userhandler "bookmarks_backend/internal/feature/user/transport/handler"
	"bookmarks_backend/internal/platform/http/handler"
	jwtmw "bookmarks_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(jwtSecret string, authH *authhandler.AuthHandler,
	userH *userhandler.UserHandler, bookmarkH *bookmarkhandler.BookmarkHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録（JWT 発行）
	r.POST("/auth/signup", authH.Signup)
	// ログイン（JWT 発行）
	r.POST("/auth/signin", authH.Signin)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/users/me", userH.Me)
		auth.PATCH("/users", userH.Edit)

		auth.GET("/bookmarks", bookmarkH.List)
		auth.POST("/bookmarks", bookmarkH.Create)
		auth.GET("/bookmarks/:id", bookmarkH.GetByID)
		auth.PATCH("/bookmarks/:id", bookmarkH.Edit)
		auth.DELETE("/bookmarks/:id", bookmarkH.Delete)
	}

	return r
}
