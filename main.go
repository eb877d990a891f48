package main

import (
	"log"
	"os"
	"strings"
	"time"

	"yatube/auth"
	"yatube/cache"
	"yatube/config"
	"yatube/db"
	"yatube/handlers"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
	indexCacheKey         = "index_page"
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if len(os.Args) > 1 {
		runCommand(os.Args[1:])
		return
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.DebugLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	router.Use(utils.NoBrowserCache) // no client caching by default, the index overrides that

	pageCache := cache.NewStore()
	indexTTL := time.Duration(config.INDEX_CACHE_TIME) * time.Second

	// Public pages
	router.GET("/",
		utils.BrowserCache(config.INDEX_CACHE_TIME),
		cache.PageMiddleware(pageCache, indexCacheKey, indexTTL),
		handlers.Index)
	router.GET("/group/:slug/", handlers.GroupPosts)
	router.GET("/profile/:username/", handlers.Profile)
	router.GET("/posts/:id/", handlers.PostDetail)
	router.GET("/media/*filepath", handlers.MediaFetch)
	// Accounts
	router.GET("/auth/signup/", handlers.SignupForm)
	router.POST("/auth/signup/", handlers.Signup)
	router.GET("/auth/login/", handlers.LoginForm)
	router.POST("/auth/login/", handlers.Login)
	router.GET("/auth/logout/", handlers.Logout)
	// Pages that need a logged-in user
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", handlers.PostCreateForm)
	authRouter.POST("/create/", handlers.PostCreate)
	authRouter.GET("/posts/:id/edit/", handlers.PostEditForm)
	authRouter.POST("/posts/:id/edit/", handlers.PostEdit)
	authRouter.POST("/posts/:id/comment", handlers.AddComment)
	authRouter.GET("/follow/", handlers.FollowIndex)
	authRouter.GET("/profile/:username/follow/", handlers.ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", handlers.ProfileUnfollow)
	// Custom error page for everything else
	router.NoRoute(handlers.NotFound)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

// runCommand handles the small admin CLI:
//
//	yatube create-group <slug> <title> [description...]
//
// Groups are managed out-of-band, there is no web UI for them.
func runCommand(args []string) {
	switch args[0] {
	case "create-group":
		if len(args) < 3 {
			log.Fatal("usage: yatube create-group <slug> <title> [description]")
		}
		description := ""
		if len(args) > 3 {
			description = strings.Join(args[3:], " ")
		}
		group, err := models.GroupCreate(args[2], args[1], description)
		if err != nil {
			log.Fatalf("create-group: %v", err)
		}
		log.Printf("Created group %d (%s)", group.ID, group.Slug)
	default:
		log.Fatalf("unknown command %q", args[0])
	}
}
