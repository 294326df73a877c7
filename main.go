package main

import "github.com/killallgit/search-gateway/cmd"

// @title           Search Gateway API
// @version         1.0.0
// @description     Provider-agnostic web and image search over a single endpoint
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/search-gateway
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
