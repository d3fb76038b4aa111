package models

import "time"

// Question types supported by the quiz player.
const (
	SingleSelect = "singleSelect"
	MultiSelect  = "multiSelect"
)

// DefaultQuizID is the identifier of the built-in seed quiz. The seed quiz is
// owned by the application, not the user: it is never uploaded, never deleted,
// and is excluded from every reconciliation operation. Read paths prepend it
// to the stored quizzes.
const DefaultQuizID = "default"

// QuizQuestion is a single question inside a quiz. Answer holds the indexes
// of the correct options.
type QuizQuestion struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      []int    `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Quiz is a user-created (or the built-in default) quiz. From the sync
// layer's point of view a Quiz is an immutable value snapshot: mutation is
// replacement of the whole record under its ID.
type Quiz struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	IsDefault   bool           `json:"isDefault,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

// Key implements [Keyed].
func (q Quiz) Key() string { return q.ID }

// DefaultQuiz returns the built-in seed quiz the app ships with. The value is
// rebuilt on every call so callers can never mutate the shared copy.
func DefaultQuiz() Quiz {
	return Quiz{
		ID:          DefaultQuizID,
		Name:        "Основы информатики",
		Description: "Встроенный квиз для знакомства с приложением",
		IsDefault:   true,
		Questions: []QuizQuestion{
			{
				Type:     SingleSelect,
				Question: "What is pipelining in a CPU?",
				Options: []string{
					"A technique to execute multiple instructions simultaneously by overlapping their execution phases",
					"A method to increase CPU clock speed",
					"A way to cool down the processor",
					"A process for storing data in RAM",
				},
				Answer:      []int{0},
				Explanation: "Pipelining is a technique where multiple instruction execution phases are overlapped to improve CPU throughput. While one instruction is being decoded, another can be fetched, and yet another can be executed simultaneously.",
			},
			{
				Type:        SingleSelect,
				Question:    "Which data structure follows the Last In First Out (LIFO) principle?",
				Options:     []string{"Queue", "Stack", "Array", "Linked List"},
				Answer:      []int{1},
				Explanation: "A Stack follows the LIFO (Last In First Out) principle, where the last element added is the first one to be removed. This is like a stack of plates where you add and remove from the top.",
			},
			{
				Type:        SingleSelect,
				Question:    "What is the time complexity of binary search in a sorted array?",
				Options:     []string{"O(n)", "O(n log n)", "O(log n)", "O(1)"},
				Answer:      []int{2},
				Explanation: "Binary search has O(log n) time complexity because it eliminates half of the remaining elements in each step by comparing with the middle element.",
			},
			{
				Type:        SingleSelect,
				Question:    "Which of the following is NOT a principle of Object-Oriented Programming?",
				Options:     []string{"Encapsulation", "Inheritance", "Polymorphism", "Compilation"},
				Answer:      []int{3},
				Explanation: "The four main principles of OOP are Encapsulation, Inheritance, Polymorphism, and Abstraction. Compilation is a process of converting source code to machine code, not an OOP principle.",
			},
			{
				Type:     SingleSelect,
				Question: "What does SQL stand for?",
				Options: []string{
					"Structured Query Language",
					"Sequential Query Language",
					"Standard Query Language",
					"Simple Query Language",
				},
				Answer:      []int{0},
				Explanation: "SQL stands for Structured Query Language. It's a domain-specific language used for managing and manipulating relational databases.",
			},
		},
	}
}
