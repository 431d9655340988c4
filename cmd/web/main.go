// @title           HR Nexus API
// @version         1.0
// @description     Recruitment portal backend: candidate applications, resume uploads and HR triage.
// @contact.name    TechNexus Solutions
// @contact.email   support@technexus.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /api/v1

package main

import (
	"hrnexus_backend/internal/app"

	_ "hrnexus_backend/docs"
)

func main() {
	app.Run()
}
