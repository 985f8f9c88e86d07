package consts

// Path syntax runes shared by the route tree and the registration surface.
const (
	RuneColon    = ':'
	RuneFwdSlash = '/'
)

const (
	// RootPlaceholder is the location value before any navigation has settled.
	// A navigator whose settled location still equals this has no previous
	// route to revert to.
	RootPlaceholder = ""

	// PathRoot is the canonical root path.
	PathRoot = "/"
)

// DefaultHistoryLimit caps the settled-location history when the config
// does not specify one.
const DefaultHistoryLimit = 32
