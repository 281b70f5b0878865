package main

import "github.com/killallgit/podscribe-api/cmd"

// @title           Podscribe API
// @version         1.0.0
// @description     A collaborative podcast transcription editing API with full-text search
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podscribe-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token obtained from /api/auth/login
func main() {
	cmd.Execute()
}
