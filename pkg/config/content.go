package config

// 页面文案与固定内容表
// 这些内容不开放给配置文件修改：拒绝文案的条数和背景渐变的数量是状态机的一部分

// NoMessages 是点击 NO 之后依次显示的文案，按 declineCount % len(NoMessages) 取值（循环，不封顶）
var NoMessages = []string{
	"wait....are you sure? 😢",
	"Really? 💔",
	"try again 🥺",
	"you sure? 😭",
	"haha nice try 😏",
	"no escape saraf 😈",
	"nice try 😤",
	"you cant escape 🙃",
	"you are testing my patience 😠",
}

const (
	// EmojiHeartbreak 前两次拒绝时显示
	EmojiHeartbreak = "💔"
	// EmojiSad 拒绝次数达到 SadEmojiThreshold 后显示
	EmojiSad = "😭"
	// SadEmojiThreshold 表情升级的拒绝次数
	SadEmojiThreshold = 2
)

// Gradients 背景主题调色板（固定 5 个），gradientIndex 与 declineCount 同步前进
var Gradients = []Gradient{
	{{0.92, 0.05, 340}, {0.88, 0.08, 350}, {0.85, 0.10, 360}},
	{{0.90, 0.06, 320}, {0.86, 0.09, 330}, {0.82, 0.11, 340}},
	{{0.88, 0.07, 300}, {0.84, 0.10, 310}, {0.80, 0.12, 320}},
	{{0.91, 0.05, 350}, {0.87, 0.08, 360}, {0.83, 0.10, 10}},
	{{0.89, 0.06, 330}, {0.85, 0.09, 340}, {0.81, 0.11, 350}},
}

// Screen copy.
const (
	WarningTitle    = "Open this link at your own risk"
	WarningTagline  = "This is a special interactive experience. Proceed with caution... or curiosity! 😏"
	ShareLabel      = "Share this link:"
	CopyLabel       = "Copy"
	CopiedLabel     = "Copied!"
	CopyFailedLabel = "Failed to copy. Please copy manually."
	ContinueLabel   = "Continue"

	NotFoundCode    = "404"
	NotFoundTitle   = "Page Not Found"
	NotFoundMessage = "Oops! The page you're looking for doesn't exist."
	RefreshLabel    = "Refresh"

	InvitationTitle    = "Coffee Date"
	InvitationQuestion = "Will you go on Coffee Date with me?"
	YesLabel           = "YES"
	NoLabel            = "NO"

	CelebrationTitle    = "Yay! 🎉"
	CelebrationSubtitle = "I knew you'd say yes! 💕"
	CelebrationCard     = "You've made me the happiest! 💖"
	CelebrationQuote    = "\"Every moment with you feels like a dream come true...\""

	Footer = "© 2026. Built with ❤️"
)

// AgreementLines 点击 YES 后在邀请卡片上显示的条款
var AgreementLines = []string{
	"By clicking YES you agree to:",
	"- Unlimited cuddles",
	"- Lifetime supply of bad puns",
	"- Mutual pizza stealing rights",
	"Effective immediately!",
}
