package util

import (
	"io"
	"net/http"
	"strings"
	"unicode"
)

// GetSafeContentType 通过文件头嗅探真实的 Content-Type，
// 嗅探后将读取位置重置到文件开头。
func GetSafeContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}

// Slugify 将标签名转换为 URL 安全的 slug。
// 保留 Unicode 字母和数字，空白折叠为连字符。
func Slugify(name string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			prevHyphen = false
		case !prevHyphen:
			b.WriteRune('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// SplitTagParam 解析标签过滤参数。同时接受重复参数和单个逗号分隔
// 字符串两种形式，返回去除首尾空白、去重后的非空标签名集合，
// 保持首次出现的顺序。
func SplitTagParam(raw []string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			name := strings.TrimSpace(part)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			tags = append(tags, name)
		}
	}
	return tags
}
