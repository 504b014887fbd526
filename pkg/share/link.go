package share

import (
	"net/url"
	"strings"

	"github.com/decker502/ownrisk/pkg/config"
)

// fallbackOrigin 既没有配置地址也没有可用的启动 URL 时使用
const fallbackOrigin = "http://localhost"

// ShareURL 构造分享链接 <base>/#<marker>
//
// base 优先使用 cfg.BaseURL；未配置时取启动 URL 的 scheme+host；
// 都没有时使用 http://localhost。结果只依赖输入，可重复生成。
func ShareURL(cfg config.ShareConfig, launchURL string) string {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = originOf(launchURL)
	}
	return base + "/#" + strings.TrimPrefix(cfg.Marker, "#")
}

func originOf(raw string) string {
	if raw == "" {
		return fallbackOrigin
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fallbackOrigin
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host}).String()
}
