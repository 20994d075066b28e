// internal/gateway/schema.go
package gateway

// submissionSchema is the contract the intake endpoint expects. It guards
// the shape of the payload, not the business rules; those are the wizard
// validator's job and have already passed by the time a record gets here.
const submissionSchema = `{
  "type": "object",
  "required": [
    "firstName", "lastName", "fullName", "email", "phone", "city", "country",
    "dateOfBirth", "age", "countryToRepresent",
    "consentAge", "consentCitizenship", "consentConduct", "termsAgreed"
  ],
  "properties": {
    "firstName": {"type": "string", "minLength": 1},
    "middleName": {"type": "string"},
    "lastName": {"type": "string", "minLength": 1},
    "fullName": {"type": "string", "minLength": 1},
    "email": {"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$"},
    "phone": {"type": "string", "minLength": 1},
    "city": {"type": "string", "minLength": 1},
    "country": {"type": "string", "minLength": 1},
    "dateOfBirth": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "age": {"type": "integer", "minimum": 0},
    "ethnicity": {"type": "string"},
    "countryToRepresent": {"type": "string", "minLength": 1},
    "height": {"type": "string"},
    "weight": {"type": "string"},
    "experience": {"type": "string"},
    "education": {"type": "string"},
    "skills": {"type": "string"},
    "motivation": {"type": "string"},
    "goals": {"type": "string"},
    "hearAboutUs": {"type": "string"},
    "strategy": {"type": "string"},
    "socialMedia": {"type": "string"},
    "bio": {"type": "string"},
    "countryOverview": {"type": "string"},
    "culturalInfo": {"type": "string"},
    "consentAge": {"type": "boolean", "enum": [true]},
    "consentCitizenship": {"type": "boolean", "enum": [true]},
    "consentConduct": {"type": "boolean", "enum": [true]},
    "termsAgreed": {"type": "boolean", "enum": [true]}
  }
}`
