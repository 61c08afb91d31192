package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedClient represents a client parsed from natural language
type ParsedClient struct {
	Name       string
	Topics     []string
	Profession string
	Age        int
	Email      string
	Phone      string
	Errors     []string
}

// ParseClientInfo extracts metadata from a client description using natural syntax
// Syntax: "Sarah Weber #leadership,confidence @marketing age:34 email:s.weber@mail.ch phone:+41791234567"
func ParseClientInfo(input string) ParsedClient {
	result := ParsedClient{
		Name:   input,
		Topics: []string{},
		Errors: []string{},
	}

	// Extract email (email:addr)
	emailRegex := regexp.MustCompile(`email:([^\s]+)`)
	emailMatches := emailRegex.FindStringSubmatch(input)
	if len(emailMatches) > 1 {
		normalized, err := NormalizeEmail(emailMatches[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid email '"+emailMatches[1]+"': "+err.Error())
		} else {
			result.Email = normalized
		}
		// Remove from name
		input = emailRegex.ReplaceAllString(input, "")
	}

	// Extract phone (phone:number)
	phoneRegex := regexp.MustCompile(`phone:([^\s]+)`)
	phoneMatches := phoneRegex.FindStringSubmatch(input)
	if len(phoneMatches) > 1 {
		normalized, err := NormalizePhone(phoneMatches[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid phone '"+phoneMatches[1]+"': "+err.Error())
		} else {
			result.Phone = normalized
		}
		// Remove from name
		input = phoneRegex.ReplaceAllString(input, "")
	}

	// Extract age (age:34)
	ageRegex := regexp.MustCompile(`age:(\d+)`)
	ageMatches := ageRegex.FindStringSubmatch(input)
	if len(ageMatches) > 1 {
		age, err := strconv.Atoi(ageMatches[1])
		if err != nil || age < 16 || age > 120 {
			result.Errors = append(result.Errors, "Invalid age '"+ageMatches[1]+"'. Use a number between 16 and 120")
		} else {
			result.Age = age
		}
		// Remove from name
		input = ageRegex.ReplaceAllString(input, "")
	}

	// Extract topics (#topic1,topic2 or #topic1 #topic2)
	topicRegex := regexp.MustCompile(`#([a-zA-ZäöüÄÖÜß0-9_,-]+)`)
	topicMatches := topicRegex.FindAllStringSubmatch(input, -1)
	for _, match := range topicMatches {
		if len(match) > 1 {
			// Split by comma in case of #topic1,topic2
			topicGroup := strings.Split(match[1], ",")
			for _, topic := range topicGroup {
				topic = strings.TrimSpace(topic)
				if topic != "" {
					result.Topics = append(result.Topics, topic)
				}
			}
		}
	}
	// Remove from name
	input = topicRegex.ReplaceAllString(input, "")

	// Extract profession (@profession-name)
	professionRegex := regexp.MustCompile(`@([a-zA-ZäöüÄÖÜß0-9_-]+)`)
	professionMatches := professionRegex.FindStringSubmatch(input)
	if len(professionMatches) > 1 {
		result.Profession = professionMatches[1]
		// Remove from name
		input = professionRegex.ReplaceAllString(input, "")
	}

	// Clean up the name (remove extra spaces)
	result.Name = strings.Join(strings.Fields(input), " ")
	result.Name = strings.TrimSpace(result.Name)

	return result
}
