package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/particle-field/internal/theme"
)

func (g *Game) statusLine(th theme.Theme) string {
	w, h := g.anim.Bounds()
	return fmt.Sprintf("%s x%d | %dx%d | %s | %.1f fps | up %s\nT: theme  S: stats  Space: pause  Esc/Q: quit",
		g.cfg.Variant, len(g.anim.Particles()), w, h, th, g.stats.FPS(), formatDuration(g.stats.Uptime()))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
