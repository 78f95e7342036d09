// pkg/pip/constants.go
package pip

// CorePackages are installed in this order, one pip invocation each
var CorePackages = []string{
	"fastapi==0.104.1",
	"uvicorn[standard]==0.24.0",
	"python-multipart==0.0.6",
	"librosa",
	"numpy",
	"pandas",
	"python-dotenv",
	"pydub",
	"soundfile",
}

// OptionalPackage is attempted after the core list; failure is tolerated
const OptionalPackage = "essentia"

// StepName identifies the installer in run reports
const StepName = "install"
