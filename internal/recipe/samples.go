package recipe

// builtinDocs are sample documents in the exact shape the generator
// produces: English first, then the bold Hindi Translation marker,
// then the Hindi variant with its own headings.
var builtinDocs = map[string]string{
	"masala-chai": masalaChai,
	"veg-khichdi": vegKhichdi,
	"tomato-soup": tomatoSoup,
}

const masalaChai = `**Name:** Masala Chai

**Ingredients:**
* 2 cups water
* 1 cup whole milk
* 2 teaspoons black tea leaves
* 2 green cardamom pods, crushed
* 1 small piece of ginger, grated
* 2 teaspoons sugar

**Instructions:**
1. Bring the water to a boil with the cardamom and ginger for 3 minutes
2. Add the tea leaves and simmer for 2 minutes
3. Pour in the milk and bring back to a gentle boil
4. Add sugar, strain into cups and serve hot

**Approximate Nutritional Value**
* Calories: 120 kcal
* Protein: 4g
* Carbohydrates: 16g
* Fat: 5g

**Hindi Translation:**

**नाम:** मसाला चाय

**सामग्री:**
* 2 कप पानी
* 1 कप दूध
* 2 चम्मच काली चाय पत्ती
* 2 हरी इलायची, कुटी हुई
* अदरक का छोटा टुकड़ा, कसा हुआ
* 2 चम्मच चीनी

**निर्देश:**
1. पानी में इलायची और अदरक डालकर 3 मिनट तक उबालें
2. चाय पत्ती डालें और 2 मिनट तक धीमी आंच पर पकाएं
3. दूध डालें और फिर से उबाल आने दें
4. चीनी डालें, छानकर कप में डालें और गरम परोसें
`

const vegKhichdi = `**Name:** Vegetable Khichdi

**Ingredients:**
* 1 cup rice
* half cup yellow moong dal
* 1 carrot, diced
* half cup green peas
* 1 teaspoon cumin seeds
* half teaspoon turmeric powder
* 2 tablespoons ghee
* Salt to taste

**Instructions:**
1. Rinse the rice and dal together and soak for 15 minutes
2. Heat the ghee in a pressure cooker and crackle the cumin seeds
3. Add the carrot and peas and saute for 2 minutes
4. Add rice, dal, turmeric, salt and 4 cups of water
5. Pressure cook for 10 minutes and let the pressure release
6. Stir, top with a spoon of ghee and serve warm

**Approximate Nutritional Value**
* Calories: 320 kcal
* Protein: 11g
* Carbohydrates: 52g
* Fat: 8g

**Hindi Translation:**

**नाम:** सब्जी खिचड़ी

**सामग्री:**
* 1 कप चावल
* आधा कप पीली मूंग दाल
* 1 गाजर, कटी हुई
* आधा कप हरी मटर
* 1 चम्मच जीरा
* आधा चम्मच हल्दी पाउडर
* 2 बड़े चम्मच घी
* स्वादानुसार नमक

**निर्देश:**
1. चावल और दाल को धोकर 15 मिनट के लिए भिगो दें
2. प्रेशर कुकर में घी गरम करें और जीरा तड़काएं
3. गाजर और मटर डालकर 2 मिनट तक भूनें
4. चावल, दाल, हल्दी, नमक और 4 कप पानी डालें
5. 10 मिनट तक प्रेशर कुक करें और प्रेशर निकलने दें
6. चलाएं, ऊपर से एक चम्मच घी डालें और गरम परोसें
`

const tomatoSoup = `**Name:** Tomato Soup

**Ingredients:**
* 4 ripe tomatoes, chopped
* 1 small onion, chopped
* 2 cloves garlic
* 1 tablespoon butter
* Salt and pepper to taste

**Instructions:**
1. Melt the butter and saute the onion and garlic for 3 minutes
2. Add the tomatoes and cook for 10 minutes until soft
3. Blend until smooth and return to the pot
4. Season with salt and pepper and serve hot

**Approximate Nutritional Value**
* Calories: 90 kcal
* Protein: 2g
* Carbohydrates: 12g
* Fat: 4g

**Hindi Translation:**

**नाम:** टमाटर का सूप

**सामग्री:**
* 4 पके टमाटर, कटे हुए
* 1 छोटा प्याज, कटा हुआ
* 2 लहसुन की कलियां
* 1 बड़ा चम्मच मक्खन
* स्वादानुसार नमक और काली मिर्च

**निर्देश:**
1. मक्खन पिघलाएं और प्याज तथा लहसुन को 3 मिनट तक भूनें
2. टमाटर डालें और नरम होने तक 10 मिनट पकाएं
3. पीसकर चिकना करें और वापस बर्तन में डालें
4. नमक और काली मिर्च डालकर गरम परोसें
`
