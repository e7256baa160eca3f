// Package main provides localization for the memecanvas CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Logging": "ログ",
		"Input":   "入力",
		"Output":  "出力先",
		"Content": "内容",
		"Drag":    "ドラッグ",
		"Debug":   "デバッグ",

		// Root command
		"Render promotional event images":      "イベント告知画像を描画",
		"Log level (debug, info, warn, error)": "ログレベル (debug, info, warn, error)",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Commands
		"Render an image from a settings file":           "設定ファイルから画像を描画",
		"Replay a background drag and render the result": "背景のドラッグを再現して描画",
		"List the canvas presets":                        "キャンバスのプリセットを一覧表示",

		// Render flags
		"Settings file (YAML)":                                   "設定ファイル (YAML)",
		"Directory the exported PNG is written to":               "PNGの出力先ディレクトリ",
		"Headline text":                                          "見出しテキスト",
		"Canvas preset (default, us-letter, us-tabloid, a4, a3)": "キャンバスのプリセット (default, us-letter, us-tabloid, a4, a3)",
		"Background image file":                                  "背景画像ファイル",
		"Watermark image file":                                   "ウォーターマーク画像ファイル",
		"Export file name without extension":                     "拡張子なしの出力ファイル名",
		"Save geometry and every layer for inspection":           "ジオメトリと各レイヤーを保存して確認",
		"Directory for debug output":                             "デバッグ出力先ディレクトリ",

		// Drag flags
		"Pointer press position as x,y":         "ポインタを押した位置 (x,y)",
		"Intermediate pointer positions as x,y": "途中のポインタ位置 (x,y)",
		"Pointer release position as x,y":       "ポインタを離した位置 (x,y)",

		// Output
		"Background position: %.1f,%.1f": "背景の位置: %.1f,%.1f",
		"font":                           "フォント",
		"Interrupted, shutting down...":  "中断されました。シャットダウン中...",
	})
}
