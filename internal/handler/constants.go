package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteAbout is the about page route.
	RouteAbout = "/about"
	// RouteFeatures is the features page route.
	RouteFeatures = "/features"
	// RouteClients is the clients page route.
	RouteClients = "/clients"
	// RouteNews is the news listing route.
	RouteNews = "/news"
	// RoutePostSlug is the post detail route pattern.
	RoutePostSlug = "/post/{slug}"
	// RouteContact is the contact page route.
	RouteContact = "/contact"
	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteLanguage is the language preference route.
	RouteLanguage = "/language"
	// RouteSitemap is the sitemap route.
	RouteSitemap = "/sitemap.xml"
	// RouteRobots is the robots.txt route.
	RouteRobots = "/robots.txt"
	// RouteChatAPI is the chat assistant JSON endpoint.
	RouteChatAPI = "/api/chat"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"

	// RoutePosts is the posts admin route.
	RoutePosts = "/posts"
	// RouteSections is the sections admin route.
	RouteSections = "/sections"
	// RouteInquiries is the inquiries admin route.
	RouteInquiries = "/inquiries"
	// RouteAssets is the assets admin route.
	RouteAssets = "/assets"
	// RouteSettings is the settings admin route.
	RouteSettings = "/settings"
)

const (
	redirectHome          = RouteRoot
	redirectLogin         = RouteLogin
	redirectContact       = RouteContact
	redirectAdmin         = "/admin"
	redirectAdminPosts    = redirectAdmin + RoutePosts
	redirectAdminSections = redirectAdmin + RouteSections
	redirectAdminAssets   = redirectAdmin + RouteAssets
	redirectAdminSettings = redirectAdmin + RouteSettings
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"
