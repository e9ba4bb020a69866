package docshelf

import (
	"strconv"
	"strings"
	"unicode"
)

// GeneralSubtopic collects documents that declare no subtopic.
const GeneralSubtopic = "General"

// Topic is the first level of the navigation hierarchy.
// Topics are built fresh on every listing and never persisted.
type Topic struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Subtopics []*Subtopic `json:"subtopics"`
}

// Subtopic is the second level of the navigation hierarchy.
type Subtopic struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Docs  []*Document `json:"docs"`
}

// TopicID derives an identifier from a topic or subtopic title.
// Example: "Getting  Started" → getting-started
func TopicID(title string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(title), unicode.IsSpace), "-")
}

// BuildTopics folds documents into the topic/subtopic hierarchy.
//
// Topics and subtopics appear in the order they are first seen. Documents
// without a subtopic land in the GeneralSubtopic of their topic, and
// documents without a topic in DefaultTopic. Nodes are keyed by title; when
// two titles derive the same ID, later siblings get a numeric suffix.
func BuildTopics(docs []*Document) []*Topic {
	var topics []*Topic
	topicByTitle := make(map[string]*Topic)
	topicIDs := make(map[string]bool)
	subtopicByTitle := make(map[*Topic]map[string]*Subtopic)
	subtopicIDs := make(map[*Topic]map[string]bool)

	for _, doc := range docs {
		topicTitle := doc.Topic
		if topicTitle == "" {
			topicTitle = DefaultTopic
		}
		topic, ok := topicByTitle[topicTitle]
		if !ok {
			topic = &Topic{ID: uniqueID(TopicID(topicTitle), topicIDs), Title: topicTitle}
			topicByTitle[topicTitle] = topic
			subtopicByTitle[topic] = make(map[string]*Subtopic)
			subtopicIDs[topic] = make(map[string]bool)
			topics = append(topics, topic)
		}

		subtopicTitle := doc.Subtopic
		if subtopicTitle == "" {
			subtopicTitle = GeneralSubtopic
		}
		subtopic, ok := subtopicByTitle[topic][subtopicTitle]
		if !ok {
			subtopic = &Subtopic{ID: uniqueID(TopicID(subtopicTitle), subtopicIDs[topic]), Title: subtopicTitle}
			subtopicByTitle[topic][subtopicTitle] = subtopic
			topic.Subtopics = append(topic.Subtopics, subtopic)
		}

		subtopic.Docs = append(subtopic.Docs, doc)
	}

	return topics
}

// uniqueID returns id, or id with the smallest numeric suffix not yet taken,
// and records the result as taken.
func uniqueID(id string, taken map[string]bool) string {
	candidate := id
	for n := 2; taken[candidate]; n++ {
		candidate = id + "-" + strconv.Itoa(n)
	}
	taken[candidate] = true
	return candidate
}
