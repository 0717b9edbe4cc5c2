package api

// LessonData представляет занятие в ответах сервера.
// Date приходит в формате YYYY-MM-DD, Time — строкой "HH:MM - HH:MM".
// Status может отсутствовать — тогда клиент выводит его из текущего времени.
type LessonData struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Subject     string `json:"subject"`
	TutorID     string `json:"tutorId"`
	TutorName   string `json:"tutorName"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Status      string `json:"status,omitempty"`
}

// LessonsResponse представляет список занятий за запрошенный период
type LessonsResponse struct {
	Results []LessonData `json:"results"`
}
