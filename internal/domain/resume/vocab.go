package resume

// Vocabularios cerrados del extractor. Solo lo enumerado aquí se reconoce;
// ampliar la cobertura es añadir entradas, sin tocar el control de flujo.

// Cities ciudades reconocidas como ubicación, más "Remote".
var Cities = []string{
	"Mumbai", "Pune", "Delhi", "Bengaluru", "Bangalore", "Hyderabad",
	"Chennai", "Kolkata", "Gurgaon", "Noida", "Indore", "Jaipur",
	"Ahmedabad", "Remote",
}

// Skills vocabulario de habilidades. El orden declarado aquí es el orden en
// que se devuelven las coincidencias (no el orden del documento).
var Skills = []string{
	"Java", "Python", "C++", "C#", "JavaScript", "TypeScript", "Node",
	"React", "Angular", "Vue", "Next.js", "Express", "Spring", "Django",
	"Flask", "FastAPI", ".NET", "ASP.NET",
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Kafka", "RabbitMQ",
	"AWS", "GCP", "Azure", "Docker", "Kubernetes", "CI/CD", "Git",
	"Jenkins", "Terraform",
	"HTML", "CSS", "Sass", "Tailwind", "Bootstrap", "Pandas", "NumPy",
	"TensorFlow", "PyTorch", "Scikit", "OpenCV", "LLM", "NLP", "Spark",
	"Hadoop",
}

// maxSkills tope de habilidades devueltas por documento.
const maxSkills = 20
