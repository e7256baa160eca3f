package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session
		"Created output directory %s": "出力ディレクトリ %s を作成しました",
		"Export saved to %s":          "エクスポートを %s に保存しました",
		"Starting renderer":           "レンダラーを開始します",
		"Fonts ready, re-rendering":   "フォントの準備ができました。再描画します",

		// Render orchestrator
		"Rendering skipped: %s":                          "描画をスキップしました: %s",
		"Render failed: %s":                              "描画に失敗しました: %s",
		"Failed to encode image: %s":                     "画像のエンコードに失敗しました: %s",
		"Failed to save debug layer %s: %s":              "デバッグレイヤー %s の保存に失敗しました: %s",
		"Rendered %dx%d frame with %d layers (%d bytes)": "%dx%d のフレームを %d レイヤーで描画しました (%d バイト)",

		// Compositor and text layers
		"Background drawn at %.1f,%.1f size %.1fx%.1f": "背景を %.1f,%.1f にサイズ %.1fx%.1f で描画しました",
		"Layer %s skipped: %s":                         "レイヤー %s をスキップしました: %s",
		"Layer %s laid out %d lines":                   "レイヤー %s を %d 行でレイアウトしました",

		// Fonts
		"Font %s unavailable: %s":         "フォント %s を利用できません: %s",
		"Font loading interrupted: %s":    "フォントの読み込みが中断されました: %s",
		"Failed to read font %s: %s":      "フォント %s の読み込みに失敗しました: %s",
		"Failed to register font %s: %s":  "フォント %s の登録に失敗しました: %s",
		"Registered font %s (%s) from %s": "フォント %s (%s) を %s から登録しました",

		// Drag controller
		"Drag ignored: %s": "ドラッグを無視しました: %s",
		"Drag started at %.0f,%.0f from position %.1f,%.1f": "%.0f,%.0f でドラッグを開始しました (位置 %.1f,%.1f)",
		"Background moved to %.1f,%.1f":                     "背景を %.1f,%.1f に移動しました",
		"Drag ended at %.1f,%.1f":                           "ドラッグを %.1f,%.1f で終了しました",
		"No background image to drag":                       "ドラッグする背景画像がありません",
		"Drag cancelled":                                    "ドラッグをキャンセルしました",

		// Debug output
		"Debug output enabled: %s": "デバッグ出力を有効化: %s",
	})
}
