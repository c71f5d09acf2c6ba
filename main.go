package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"github.com/alibstrd/dzulfikar-ali/post"
	"github.com/alibstrd/dzulfikar-ali/site"
	"github.com/alibstrd/dzulfikar-ali/web"
)

var (
	siteCfg *site.Config
	store   *post.Store
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of the site folder.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of each cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "Expiry of cached posts and assets.")
	)
	flag.Parse()
	flagenv.Parse()

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Site folder
	rootFS := hidingFS{os.DirFS(*fRoot)}
	log.Printf("Serving site from %q", *fRoot)

	// Site configuration
	var err error
	siteCfg, err = site.Load(rootFS)
	if err != nil {
		log.Printf("Cannot load site config: %s", err)
		os.Exit(1)
	}
	if siteCfg.Title == "" {
		log.Printf("No %s found; serving with an empty site config.", site.ConfigFile)
	}

	// Post store
	postsFS, err := fs.Sub(rootFS, "posts")
	if err != nil {
		log.Printf("Cannot use posts folder: %s", err)
		os.Exit(1)
	}
	store = post.NewStore(postsFS)
	initPostCache(*fCacheSize, *fCacheDuration)

	// Parse templates
	err = loadTemplates(rootFS)
	if err != nil {
		log.Printf("Cannot parse templates: %s", err)
		os.Exit(2)
	}
	log.Printf("Loaded templates: %s", tpl.DefinedTemplates())

	// Parse sitemap template
	ok, err := loadSitemapTemplate(rootFS)
	if err != nil {
		log.Printf("Unable to load sitemap.txt template: %s", err)
		os.Exit(3)
	}
	if !ok {
		log.Print("No sitemap.txt template found; using default.")
	} else {
		log.Print("Loaded sitemap.txt template.")
	}

	// Static assets are cached and fall back to the site 404 page
	staticFS, err := fs.Sub(rootFS, "static")
	if err != nil {
		log.Printf("Cannot use static folder: %s", err)
		os.Exit(4)
	}
	cachedStatic := cachefs.New(staticFS, &cachefs.Config{
		GroupName:   "static",
		SizeInBytes: *fCacheSize,
		Duration:    *fCacheDuration,
	})

	// Setup handlers
	http.Handle("/", gziphandler.GzipHandler(http.HandlerFunc(home)))
	http.Handle("/blog", http.RedirectHandler("/blog/", http.StatusMovedPermanently))
	http.Handle("/blog/", gziphandler.GzipHandler(http.HandlerFunc(blog)))
	http.Handle("/sitemap.txt", gziphandler.GzipHandler(http.HandlerFunc(sitemap)))
	http.Handle("/favicon.ico", favicon(rootFS))
	http.Handle("/static/", http.StripPrefix("/static/",
		gziphandler.GzipHandler(
			web.ErrorHandler(
				http.FileServer(http.FS(cachedStatic)),
				renderErrorPage,
			),
		)))
	log.Print("Created handlers")

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           web.HeaderHandler(web.ExpiresHandler(http.DefaultServeMux, time.Duration(siteCfg.Expires), time.Duration(siteCfg.StaticExpires)), siteCfg.Headers),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Print("Listening for requests")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
