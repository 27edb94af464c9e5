package chatbot

import (
	"strings"
	"text/template"
)

const (
	assistantName = "Patra the AI Chatbot"
	shopName      = "Demo Laptop Shop"
)

// classificationPrompt routes the human input into the four-category
// taxonomy. The model must answer with the bare category digit.
const classificationPrompt = `You are a chatbot that classifies human input into the following categories.
category 1: inquiries about laptops related to year of release, storage, memory (RAM), product/model name, brand, weight (heavy/light), price (how much, cheap, expensive), graphics (GPU), graphics card integrated or dedicated, screen resolution, processor model, warranty, or memory type.
category 2: general conversation pleasantries humans say to chatbots like 'hello', 'how are you', 'what's up', 'hi', 'i need help', 'can you help me'.
category 3: inquiries about laptops not related to year of release, storage, memory (RAM), product/model name, brand, weight (heavy/light), price (how much, cheap, expensive), graphics (GPU), graphics card integrated or dedicated, screen resolution, processor model, warranty, or memory type.
category 4: all other inquiries unrelated to laptops or general conversation pleasantries humans say to chatbots.

If the human input is an inquiry about laptops but not about year of release, storage, memory (RAM), product/model name, brand, weight, price (how much, cheap, expensive), graphics (GPU), graphics card integrated or dedicated, screen resolution, processor model, warranty, or memory type, you should classify it as 3, not 1.

For example, if the human input is "what is the color of the laptop", "how many usb ports does it have" or "what type of front camera does the laptop have," your answer should be 3.

For example, if the human input is "what is the cheapest laptop" or "when did the laptop come out?", your answer should be 1.

Please answer with only the category number and nothing else.
Human Input: {{ .HumanInput }}
AI Answer (category number):`

// sqlGenerationPrompt turns the human input into a PostgreSQL query against
// the laptops table. Keyword lookups must use ILIKE, never equality.
const sqlGenerationPrompt = `Create a syntactically correct PostgreSQL query to run based on the previous conversation and the newest human input. Unless the user specifies in the question a specific number of examples to obtain, query for at most 5 results using the LIMIT clause as per PostgreSQL. Never query for all columns from a table. Query only the columns that are needed to answer the question. Wrap each column name in double quotes to denote them as delimited identifiers.

The following are product name keywords: Latitude 14" Chromebook, MacBook Pro 13.3", Vivobook Pro 16X, ThinkPad X13 Gen, Zenbook Pro 14.5", ProArt Studiobook 16", ROG Strix SCAR, Vector GP68HX 16", Mobile Precision 3480, Zenbook S 13", Vivobook Go 14", Bravo 15 15.6", Razer Blade 18, Asus L210 11.6", Modern 15 B11M, Stealth 17 Studio, Legion Pro 5, LOQ 16" Gaming, MacBook Air 15", OMEN 16" 240Hz, Victus 16.1 ", ROG Flow X16, Legion Slim 5, Blade 16, ENVY 16" WQXGA, Cyborg 15 A12U, CreatorPro Z17 HX, Stealth 16 Studio, and ROG Zephyrus 14".

The following are brand keywords: Dell, HP, Apple, ASUS, Lenovo, MSI, Razer.

When you generate queries, instead of querying for exact matches, you should use the ILIKE operator to query for approximate matches. When the human input inquires about a keyword, you should use the ILIKE operator.
For example, if the human input is "which ThinkPad models do you have?", you should generate SELECT "productname" FROM laptops WHERE "productname" ILIKE '%ThinkPad%'

You must only use columns that exist in the following PostgreSQL table:

{{ .TableInfo }}

{{ .ChatHistory }}
Human Input: {{ .HumanInput }}
AI Response:`

// answerPrompt phrases the raw query result as a natural-language reply.
const answerPrompt = `You are a helpful AI chatbot that provides answers to human inputs based on the SQL query result.
If the SQL Query Result is true or false, you must treat the inquiry as a yes or no question.
For example, if the human input is 'what kind of front camera does it have?', you should answer 'Yes, it has a front camera.'
Previous Conversation:
{{ .ChatHistory }}
New Human Input: {{ .HumanInput }}
SQL Query Result: {{ .SQLResult }}
Please provide an answer based on the previous conversation, new human input and SQL Query Result.`

// pleasantryPrompt keeps small talk on script: greeting only, in persona.
const pleasantryPrompt = `You are a friendly AI chatbot for ` + shopName + `. Your name is ` + assistantName + ` for ` + shopName + `.
Your job is to greet customers in a friendly way and ask them how you can help them.
Do not respond with anything other than general pleasantry.
Human Input: {{ .HumanInput }}
AI:`

var (
	classificationTmpl = template.Must(template.New("classification").Parse(classificationPrompt))
	sqlGenerationTmpl  = template.Must(template.New("sqlGeneration").Parse(sqlGenerationPrompt))
	answerTmpl         = template.Must(template.New("answer").Parse(answerPrompt))
	pleasantryTmpl     = template.Must(template.New("pleasantry").Parse(pleasantryPrompt))
)

type promptData struct {
	HumanInput  string
	ChatHistory string
	TableInfo   string
	SQLResult   string
}

func renderPrompt(tmpl *template.Template, data promptData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
