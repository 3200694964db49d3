package versioning

// Set at build time through -ldflags "-X github.com/Ethernal-Tech/ovm-message-relayer/versioning.Commit=..."
var (
	Commit    string
	Branch    string
	BuildTime string
)
