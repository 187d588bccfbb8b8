package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeQuery bỏ dấu tiếng Việt và chuẩn hóa chữ thường
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tính độ tương đồng giữa hai chuỗi
func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// ScoredRoom là phòng kèm điểm phù hợp với truy vấn
type ScoredRoom struct {
	Room  models.Room `json:"room"`
	Score int         `json:"score"`
}

func newTypeMatcher(roomTypes []models.RoomType) *closestmatch.ClosestMatch {
	names := make([]string, 0, len(roomTypes))
	for _, rt := range roomTypes {
		names = append(names, NormalizeQuery(rt.Name))
	}
	return closestmatch.New(names, []int{2, 3})
}

func scoreRoom(query string, room models.Room, typeMatcher *closestmatch.ClosestMatch) int {
	score := 0

	name := NormalizeQuery(room.RoomName)
	if strings.Contains(name, query) {
		score += 20
	} else if similarity(query, name) > 0.7 {
		score += 12
	}

	typeName := NormalizeQuery(room.RoomType.Name)
	if typeName != "" && typeMatcher.Closest(query) == typeName {
		score += 10
	}
	if similarity(query, typeName) > 0.7 {
		score += 5
	}

	return score
}

// SearchRooms chấm điểm song song các phòng theo truy vấn mờ (không phân
// biệt dấu) trên tên phòng và tên loại phòng, trả về theo điểm giảm dần.
func SearchRooms(query string, rooms []models.Room, roomTypes []models.RoomType) []ScoredRoom {
	normalized := NormalizeQuery(query)
	typeMatcher := newTypeMatcher(roomTypes)

	scoreCh := make(chan ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := scoreRoom(normalized, room, typeMatcher)
			if score > 0 {
				scoreCh <- ScoredRoom{Room: room, Score: score}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []ScoredRoom
	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
