package intent

import (
	"fmt"
	"strings"
)

// extractionSystemPrompt frames the model as a structured-output extractor.
const extractionSystemPrompt = `You are a helpful AI assistant that extracts structured information from user queries about datasets.
You should respond with valid JSON that matches the structure defined in the prompt.
Extract the most accurate intent possible from the query.`

// buildExtractionPrompt constructs the instruction sent to the model. It
// describes the output schema, lists the known metadata field names, and
// gives worked filter examples.
func buildExtractionPrompt(query string, metadataFields []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`Analyze the following user query about a dataset and determine the search intent.
Query: %q

First, determine if the query is related to dataset search or if it's a general question or unrelated to datasets.

IMPORTANT INSTRUCTIONS:
1. For dataset overview requests (e.g., "tell me about this dataset", "what's in this dataset"):
   - Start with a clear introduction about the dataset
   - Include key metadata
   - Keep the response concise but informative

If the query is related to dataset search, determine which of these data sources should be searched:
1. "dataset_info" - Dataset metadata (name, status, total_size, total_files, etc.)
2. "file_metadata" - File metadata (filename, filepath, access information)
3. "file_content" - The actual content of files in the dataset

IMPORTANT: Set file_content to true if the user:
- Asks to "provide", "display", "show", "view", "summarize", "read", or otherwise access the CONTENT of a file.
- Asks for "content of" a file
- Asks to "show" or "display" file content
- Asks to "read" a file
- Asks for "what's in" a file
- Asks for "text" or "contents" of a file

Next, determine how many files would be needed to properly answer this query:
- For general questions about the dataset, 5-10 files may be sufficient
- For questions about specific files, include those specific files
- For broad questions requiring representative content, include more files (up to 25)
- The minimum is 5 files and maximum is 25 files

IMPORTANT: Pay special attention to general file listing queries:
- If the user asks to "list files", "list all files", "show me files", etc., with no specific criteria, this should be treated as a general file listing request
- For general file listing requests, DO NOT add any specific filename filters
- If the user asks to "list random files" or "show me some files", this should also be treated as a general listing without filename filters

IMPORTANT: Extract any filters mentioned in the query. Pay close attention to:
- If the user asks about a specific filename (like "filename X" or "file named X"), create a filter with field="filename", type="contains", value=X
- If the user mentions specific paths, departments, or other metadata fields, create appropriate filters

IMPORTANT: Content and Summary Handling:
- If a specific filename is mentioned in the query, ALWAYS set file_content=true since we're dealing with a single file
- If the user asks to "show", "display", "read", "view", "provide", or "get" content, set file_content=true
- If the user asks about "what's in" or "what does it contain", set file_content=true
- By default, when file_content=true, also set summary=true
- ONLY set summary=false if the user explicitly asks for "full content", "complete text", or "entire content"
- If the user asks for a "summary", "overview", "key points", or "main ideas", keep summary=true

`, query))

	sb.WriteString(fmt.Sprintf(`For each filter, determine:
- field: The field to filter on (e.g., %s)
- type: How to filter ("equals", "contains", "exists")
- value: The value to filter by. For "exists" type, value should be null
- operation: How this filter combines with others ("AND" or "OR")
- include: Whether to perform include or exclude the filter in the query

`, strings.Join(metadataFields, ", ")))

	sb.WriteString(`Examples of filters:
1. "Show me files with Risk in the filename" -> {"field": "filename", "type": "contains", "value": "Risk", "operation": "AND", "include": true}
2. "Summarize the content of the file Risk20140318.pdf" -> {"field": "filename", "type": "contains", "value": "Risk20140318.pdf", "operation": "AND", "include": true}

Respond with a JSON object in the following format:
{
    "dataset_info": boolean,
    "file_metadata": boolean,
    "file_content": boolean,
    "summary": boolean,
    "filters": [
        {
            "field": string,
            "type": "equals" | "contains" | "exists",
            "value": string or null,
            "operation": "AND" | "OR",
            "include": boolean
        }
    ],
    "is_dataset_related": boolean,
    "needs_clarification": boolean,
    "clarification_message": string or null,
    "fields": [string],
    "max_files": number  // Between 5 and 25
}

Only include filters and fields that are needed to answer the query.
`)

	return sb.String()
}
