package gateway

import (
	"strings"
)

// cannedRule 罐頭回應規則
// anyOf 任一命中且 allOf 全部命中時採用，依序評估取第一個命中者
type cannedRule struct {
	anyOf    []string
	allOf    []string
	response string
}

// cannedRules 固定順序的罐頭回應表，無供應商時供聊天路徑使用
var cannedRules = []cannedRule{
	{
		anyOf:    []string{"hello", "hi"},
		response: "Hello! I'm your Recipe Assistant. I can help you with recipe suggestions, cooking tips, ingredient substitutions, and more. What would you like to know?",
	},
	{
		allOf:    []string{"ingredient", "substitute"},
		response: "I can help with ingredient substitutions! For example:\n• Butter → Coconut oil or applesauce\n• Eggs → Flax eggs or mashed banana\n• Milk → Almond milk or oat milk\n\nWhat specific ingredient are you looking to substitute?",
	},
	{
		anyOf:    []string{"vegetarian", "vegan"},
		response: "Great choice! I can suggest delicious vegetarian/vegan recipes. Some popular options include:\n• Chickpea curry\n• Veggie stir-fry\n• Lentil soup\n• Buddha bowls\n• Pasta primavera\n\nWould you like a detailed recipe for any of these?",
	},
	{
		anyOf:    []string{"quick", "fast", "30 min"},
		response: "Here are some quick recipes you can make in 30 minutes or less:\n• Pasta aglio e olio\n• Chicken stir-fry\n• Caprese salad\n• Quesadillas\n• Fried rice\n\nWhich one interests you?",
	},
	{
		anyOf:    []string{"dessert", "sweet"},
		response: "Sweet tooth? Here are some delightful dessert ideas:\n• Chocolate chip cookies\n• Tiramisu\n• Fruit tart\n• Brownies\n• Panna cotta\n\nWould you like the recipe for any of these?",
	},
	{
		anyOf:    []string{"healthy", "diet"},
		response: "For healthy eating, consider:\n• Grilled salmon with vegetables\n• Quinoa salad\n• Greek yogurt parfait\n• Smoothie bowls\n• Roasted chicken with sweet potato\n\nThese are nutritious and delicious!",
	},
	{
		anyOf:    []string{"pasta", "italian"},
		response: "Italian cuisine is wonderful! Try these pasta dishes:\n• Carbonara\n• Bolognese\n• Pesto pasta\n• Cacio e pepe\n• Arrabbiata\n\nWould you like step-by-step instructions for any?",
	},
	{
		anyOf:    []string{"chicken"},
		response: "Chicken is so versatile! Popular recipes include:\n• Grilled chicken breast\n• Chicken tikka masala\n• Lemon herb chicken\n• Chicken parmesan\n• Teriyaki chicken\n\nWhat style are you in the mood for?",
	},
	{
		anyOf:    []string{"soup"},
		response: "Soups are comforting and nutritious! Here are some favorites:\n• Tomato soup\n• Chicken noodle soup\n• Minestrone\n• French onion soup\n• Butternut squash soup\n\nWould you like a recipe for any of these?",
	},
	{
		anyOf:    []string{"cook", "make"},
		allOf:    []string{"how"},
		response: "I'd be happy to guide you through cooking! Could you be more specific about what you'd like to make? For example:\n• A specific dish\n• A type of cuisine\n• Using certain ingredients\n• Dietary preferences",
	},
	{
		anyOf:    []string{"tip", "advice"},
		response: "Here are some essential cooking tips:\n• Always read the recipe fully before starting\n• Prep all ingredients before cooking (mise en place)\n• Season as you go, not just at the end\n• Let meat rest after cooking\n• Taste and adjust seasoning\n\nNeed tips for something specific?",
	},
}

// defaultCannedResponse 無規則命中時的預設回應
const defaultCannedResponse = "I'm here to help with all your recipe questions! You can ask me about:\n• Recipe suggestions\n• Cooking techniques\n• Ingredient substitutions\n• Dietary preferences\n• Cooking tips and tricks\n\nWhat would you like to know?"

// matches 以大小寫不敏感的子字串比對規則
func (r cannedRule) matches(message string) bool {
	for _, kw := range r.allOf {
		if !strings.Contains(message, kw) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return len(r.allOf) > 0
	}
	for _, kw := range r.anyOf {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// CannedResponse 依關鍵字回傳罐頭回應，依序取第一個命中的規則
func CannedResponse(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range cannedRules {
		if rule.matches(lower) {
			return rule.response
		}
	}
	return defaultCannedResponse
}
