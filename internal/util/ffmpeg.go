package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoInfo 上传视频的探测结果
type VideoInfo struct {
	Duration float64 `json:"duration"` // 秒
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// GetVideoInfo 用 ffprobe 读取视频元数据
func GetVideoInfo(videoPath string) (*VideoInfo, error) {
	fileInfo, err := os.Stat(videoPath)
	if err != nil {
		return nil, fmt.Errorf("视频文件不存在: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("获取视频信息失败: %v", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("解析视频信息失败: %v", err)
	}

	var width, height int
	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			width = stream.Width
			height = stream.Height
			break
		}
	}

	duration, _ := strconv.ParseFloat(result.Format.Duration, 64)

	return &VideoInfo{
		Duration: duration,
		Width:    width,
		Height:   height,
		Format:   result.Format.Format,
		Size:     fileInfo.Size(),
	}, nil
}

// GenerateVideoThumbnail 从第1秒截一帧作为缩略图，输出 jpg
func GenerateVideoThumbnail(videoPath, thumbnailPath string) error {
	err := ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": "00:00:01"}).
		Output(thumbnailPath, ffmpeg.KwArgs{"vframes": 1, "format": "image2", "vcodec": "mjpeg"}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return fmt.Errorf("生成视频缩略图失败: %v", err)
	}
	return nil
}
