package middleware

import (
	"net/http"

	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"
	"github.com/kparekh77/api-project-template/internal/pkg/problems"

	"github.com/gin-gonic/gin"
)

const killSwitchMessage = "Kill-Switch is enabled. Please contact the service owner for more information."

// KillSwitch returns a 503 problem response for every non-excluded path while
// the kill switch state file reports enabled. The state file is read on every
// request, so operators can flip the switch by editing the mounted config map
// without restarting the service. An unreadable state file is logged and
// treated as disabled.
func KillSwitch(log logger.Logger, configPath string, excludePaths []string) gin.HandlerFunc {
	normalisedExcludes := make([]string, len(excludePaths))
	for i, path := range excludePaths {
		normalisedExcludes[i] = normalisePath(path)
	}

	return func(ctx *gin.Context) {
		path := normalisePath(ctx.Request.URL.Path)
		for _, excluded := range normalisedExcludes {
			if path == excluded {
				ctx.Next()
				return
			}
		}

		state, err := config.LoadKillSwitchState(configPath)
		if err != nil {
			log.Warn("Failed to read kill switch state, treating as disabled: ", err)
			ctx.Next()
			return
		}

		if state.Enabled {
			log.Warn(killSwitchMessage)
			problems.AbortWithProblem(ctx, http.StatusServiceUnavailable, killSwitchMessage)
			return
		}

		ctx.Next()
	}
}
